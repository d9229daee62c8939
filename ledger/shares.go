package ledger

import "github.com/saviour-frank/vault-chain/models"

// balanceOf reads a share balance through the changeset overlay,
// defaulting to zero when no row exists.
func (e *Engine) balanceOf(cs *Changeset, assetID uint64, owner models.Identity) uint64 {
	k := BalanceKey{AssetID: assetID, Owner: owner}
	if cs != nil {
		if shares, ok := cs.Balances[k]; ok {
			return shares
		}
	}
	return e.t.balances[k]
}

// setBalance stages a direct overwrite of one balance row.
func (e *Engine) setBalance(cs *Changeset, assetID uint64, owner models.Identity, shares uint64) {
	cs.Balances[BalanceKey{AssetID: assetID, Owner: owner}] = shares
}

// transferShares moves amount from one balance to the other as a staged
// read-modify-write. The debit is staged before the credit is read, so a
// self-transfer nets to zero instead of minting shares. This is the only
// path that changes balances after creation; conservation holds by
// construction.
func (e *Engine) transferShares(cs *Changeset, assetID uint64, from, to models.Identity, amount uint64) error {
	fromBal := e.balanceOf(cs, assetID, from)
	if amount > fromBal {
		return models.Errf(models.CodeInsufficientShares, "balance %d short of %d", fromBal, amount)
	}
	e.setBalance(cs, assetID, from, fromBal-amount)
	e.setBalance(cs, assetID, to, e.balanceOf(cs, assetID, to)+amount)
	return nil
}
