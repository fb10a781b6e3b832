package access

import "github.com/NatLabRockies/routee-compass-go/network"

// restrictionKey identifies a disallowed (previous edge, next edge) pair
// within a single edge list. Turn restrictions do not cross edge lists.
type restrictionKey struct {
	ListId network.EdgeListId
	Prev   network.EdgeId
	Next   network.EdgeId
}

// TurnRestriction forbids specific (prev edge, next edge) transitions,
// recovered from the turn-restriction record CSV shape of the original
// constraint config (prev_edge_id, next_edge_id pairs).
type TurnRestriction struct {
	forbidden map[restrictionKey]struct{}
}

// NewTurnRestriction builds a TurnRestriction from a list of forbidden
// (edge list, prev edge, next edge) transitions.
func NewTurnRestriction(listId network.EdgeListId, pairs [][2]network.EdgeId) *TurnRestriction {
	forbidden := make(map[restrictionKey]struct{}, len(pairs))
	for _, p := range pairs {
		forbidden[restrictionKey{ListId: listId, Prev: p[0], Next: p[1]}] = struct{}{}
	}
	return &TurnRestriction{forbidden: forbidden}
}

// Admissible allows any edge when there is no previous edge (start of
// search); otherwise rejects next edge iff (prevEdge, nextEdge) is a
// forbidden transition within the same edge list.
func (t *TurnRestriction) Admissible(prevEdge *network.EdgeRef, nextEdge network.EdgeRef) (bool, error) {
	if prevEdge == nil || prevEdge.EdgeListId != nextEdge.EdgeListId {
		return true, nil
	}
	key := restrictionKey{ListId: nextEdge.EdgeListId, Prev: prevEdge.EdgeId, Next: nextEdge.EdgeId}
	_, forbidden := t.forbidden[key]
	return !forbidden, nil
}

var _ Model = (*TurnRestriction)(nil)
