package gmt

import (
	"slices"

	"github.com/ib-77/sig2gmt/pkg/signature"
)

// Group is the run of signatures sharing one key value.
type Group struct {
	Key        string
	Signatures []signature.Signature
}

// GroupBy partitions sigs by Source. Every signature lands in exactly one
// group and keeps its relative order; groups come back sorted by key.
func GroupBy(sigs []signature.Signature) []Group {
	byKey := make(map[string][]signature.Signature)
	for _, sig := range sigs {
		byKey[sig.Source] = append(byKey[sig.Source], sig)
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	groups := make([]Group, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, Group{Key: k, Signatures: byKey[k]})
	}
	return groups
}
