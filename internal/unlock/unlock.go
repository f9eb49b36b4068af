// Package unlock delivers purchase unlock requests to the host's credit ledger.
//
// The library never debits credits itself: it hands the request over and the host records the
// grant, which shows up in the purchased content of the next user it sends.
package unlock

// Request is an unlock request for one purchasable content id
type Request struct {
	UserID    string `json:"userId"`
	Cost      int    `json:"cost"`
	ContentID string `json:"contentId"`
}
