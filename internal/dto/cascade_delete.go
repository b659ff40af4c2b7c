package dto

// DeleteAccountParams defines query parameters for account deletion.
// DeleteMovements=true hard-deletes movement history; false keeps each
// movement as an orphaned record.
type DeleteAccountParams struct {
	DeleteMovements bool `form:"deleteMovements,default=false"`
}

// CascadeDeleteResult reports exactly how many dependent records each step
// of the cascade touched. When the cascade fails part-way the counts
// reflect the deletions that did complete.
type CascadeDeleteResult struct {
	AccountName       string `json:"accountName"`
	PocketsDeleted    int    `json:"pocketsDeleted"`
	SubPocketsDeleted int    `json:"subPocketsDeleted"`
	MovementsAffected int    `json:"movementsAffected"`
}
