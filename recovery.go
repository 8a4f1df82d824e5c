package slip39

import (
	"encoding/hex"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// UndeterminedThreshold is returned by GroupStatus for a group that has
// not yet had any share entered for it, so its threshold isn't known yet.
const UndeterminedThreshold = -1

// shareKey is a comparable stand-in for a Share's full value, used to
// drive a mapset.Set since Share itself holds a []byte field and so is
// not a valid map/set key type.
type shareKey struct {
	identifier      int
	extendable      bool
	iterationExp    int
	groupIndex      int
	groupThreshold  int
	groupCount      int
	index           int
	memberThreshold int
	valueHex        string
}

func keyOf(s Share) shareKey {
	return shareKey{
		identifier:      s.Identifier,
		extendable:      s.Extendable,
		iterationExp:    s.IterationExp,
		groupIndex:      s.GroupIndex,
		groupThreshold:  s.GroupThreshold,
		groupCount:      s.GroupCount,
		index:           s.Index,
		memberThreshold: s.MemberThreshold,
		valueHex:        hex.EncodeToString(s.Value),
	}
}

// ShareGroup is an unordered, deduplicated collection of shares that all
// agree on group-level parameters (groupIndex, memberThreshold).
type ShareGroup struct {
	params  groupParameters
	hasSeen bool
	members map[int]Share // keyed by member Index
	seen    mapset.Set[shareKey]
}

func newShareGroup() *ShareGroup {
	return &ShareGroup{
		members: make(map[int]Share),
		seen:    mapset.NewSet[shareKey](),
	}
}

// Add inserts s into the group. Adding a value-equal share a second time
// is a no-op. Adding a share that disagrees with the group's established
// parameters, or whose member index collides with a different share, is
// an error.
func (g *ShareGroup) Add(s Share) error {
	if g.hasSeen && s.group() != g.params {
		return newMnemonicError("share does not match this group's parameters")
	}
	if !g.hasSeen {
		g.params = s.group()
		g.hasSeen = true
	}

	k := keyOf(s)
	if g.seen.Contains(k) {
		return nil
	}

	if existing, ok := g.members[s.Index]; ok && !existing.valueEqual(s) {
		return newMnemonicError("conflicting share for member index %d", s.Index)
	}

	g.members[s.Index] = s
	g.seen.Add(k)
	return nil
}

// Size returns the number of distinct member shares currently held.
func (g *ShareGroup) Size() int {
	return len(g.members)
}

// IsComplete reports whether this group has reached its member threshold.
func (g *ShareGroup) IsComplete() bool {
	return g.hasSeen && g.Size() >= g.params.memberThreshold
}

// Shares returns the held shares as a slice, sorted by member index for
// determinism.
func (g *ShareGroup) Shares() []Share {
	out := make([]Share, 0, len(g.members))
	for _, s := range g.members {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// minimalShares returns exactly memberThreshold shares from the group,
// for feeding into RecoverEMS.
func (g *ShareGroup) minimalShares() []Share {
	shares := g.Shares()
	if len(shares) > g.params.memberThreshold {
		shares = shares[:g.params.memberThreshold]
	}
	return shares
}

// RecoveryState accumulates shares across an interactive recovery
// session, grouping them by groupIndex and rejecting anything that
// doesn't belong to the set established by the first share seen.
type RecoveryState struct {
	hasParams bool
	params    commonParameters
	groups    map[int]*ShareGroup
}

// NewRecoveryState returns an empty recovery accumulator.
func NewRecoveryState() *RecoveryState {
	return &RecoveryState{groups: make(map[int]*ShareGroup)}
}

// Matches reports whether s's top-level parameters agree with whatever
// set of shares this RecoveryState has already accepted. A RecoveryState
// with no shares yet matches everything.
func (r *RecoveryState) Matches(s Share) bool {
	if !r.hasParams {
		return true
	}
	return s.common() == r.params
}

// AddShare validates and inserts s. If this is the first share seen, it
// establishes the common parameters for the whole recovery.
func (r *RecoveryState) AddShare(s Share) error {
	if !r.Matches(s) {
		return newMnemonicError("share is not part of the current recovery set")
	}
	if !r.hasParams {
		r.params = s.common()
		r.hasParams = true
	}

	g, ok := r.groups[s.GroupIndex]
	if !ok {
		g = newShareGroup()
		r.groups[s.GroupIndex] = g
	}
	return g.Add(s)
}

// Has reports whether a value-equal share has already been accepted.
func (r *RecoveryState) Has(s Share) bool {
	g, ok := r.groups[s.GroupIndex]
	if !ok {
		return false
	}
	return g.seen.Contains(keyOf(s))
}

// GroupStatus reports how many members have been entered for groupIndex,
// and that group's member threshold (UndeterminedThreshold if no share
// for that group has been seen yet).
func (r *RecoveryState) GroupStatus(groupIndex int) (entered, threshold int) {
	g, ok := r.groups[groupIndex]
	if !ok {
		return 0, UndeterminedThreshold
	}
	return g.Size(), g.params.memberThreshold
}

// GroupIsComplete reports whether groupIndex has reached its member
// threshold.
func (r *RecoveryState) GroupIsComplete(groupIndex int) bool {
	g, ok := r.groups[groupIndex]
	return ok && g.IsComplete()
}

// GroupsComplete returns the indices of every complete group, sorted.
func (r *RecoveryState) GroupsComplete() []int {
	out := []int{}
	for idx, g := range r.groups {
		if g.IsComplete() {
			out = append(out, idx)
		}
	}
	sort.Ints(out)
	return out
}

// IsComplete reports whether enough groups are complete to attempt
// recovery (at least groupThreshold of them), requiring at least one
// share to have been seen so groupThreshold is known.
func (r *RecoveryState) IsComplete() bool {
	if !r.hasParams {
		return false
	}
	return len(r.GroupsComplete()) >= r.params.groupThreshold
}

// GroupPrefix returns the first few words of a mnemonic synthesized for
// groupIndex with the parameters seen so far, as a UI hint for "you are
// entering a share for group N". It returns an error if no parameters
// have been established yet.
func (r *RecoveryState) GroupPrefix(groupIndex int) ([]string, error) {
	if !r.hasParams {
		return nil, newMnemonicError("no shares have been entered yet")
	}
	g, ok := r.groups[groupIndex]
	memberThreshold := 1
	if ok {
		memberThreshold = g.params.memberThreshold
	}

	hint := Share{
		Identifier:      r.params.identifier,
		Extendable:      r.params.extendable,
		IterationExp:    r.params.iterationExp,
		GroupIndex:      groupIndex,
		GroupThreshold:  r.params.groupThreshold,
		GroupCount:      r.params.groupCount,
		Index:           0,
		MemberThreshold: memberThreshold,
		Value:           make([]byte, 16),
	}
	words, err := hint.Words()
	if err != nil {
		return nil, err
	}
	return words[:groupPrefixLengthWords], nil
}

// Recover attempts recovery using the minimal set of complete groups (up
// to groupThreshold of them, each trimmed to exactly its member
// threshold), decrypting the result with passphrase.
func (r *RecoveryState) Recover(passphrase interface{}) ([]byte, error) {
	if !r.IsComplete() {
		return nil, newMnemonicError("recovery is not complete")
	}

	complete := r.GroupsComplete()
	chosen := complete[:r.params.groupThreshold]

	groups := make(map[int][]Share, len(chosen))
	for _, idx := range chosen {
		groups[idx] = r.groups[idx].minimalShares()
	}

	ems, err := RecoverEMS(groups)
	if err != nil {
		return nil, err
	}
	defer Zeroize(ems.Ciphertext)

	return ems.Decrypt(passphrase)
}
