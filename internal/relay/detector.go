package relay

import "bytes"

// ProofChanged reports whether the fetched state carries a different proof
// payload than the last delivered record. Timestamps and public values are
// ignored, two deliveries of the same proof bytes are the same proof. A nil
// prev means nothing was delivered yet, so the first observation always
// counts as changed.
func ProofChanged(prev *ProofRecord, state *ChainState) bool {
	if prev == nil {
		return true
	}
	return !bytes.Equal(prev.ProofData, state.Payload)
}

// SnapshotChanged reports whether the fetched state differs from the last
// recorded snapshot in height or root. Both are compared: a root change at
// an unchanged height is still a change worth recording.
func SnapshotChanged(prev *HealthSnapshot, state *ChainState) bool {
	if prev == nil {
		return true
	}
	return prev.Height != state.Height || !bytes.Equal(prev.Root, state.Root)
}
