package lightclient

import "github.com/babylonlabs-io/sp1-ics07-tendermint/types"

// UpgradeClient is listed in spec.md's external interface table but
// explicitly out of scope (spec.md Non-goals: "Upgrade proposals / IBC
// client upgrade governance flow"). It still needs a reachable entry point
// so callers wired against the full interface get a typed error instead of
// a missing method.
func (c *Client) UpgradeClient(_ types.ClientState, _ types.ConsensusState) error {
	if err := c.notFrozen(); err != nil {
		return err
	}
	return types.ErrFeatureNotSupported.Wrap("client upgrades are not supported")
}
