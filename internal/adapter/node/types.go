package node

import "github.com/shopspring/decimal"

type blockchainInfo struct {
	Chain                string  `json:"chain"`
	Blocks               int64   `json:"blocks"`
	Headers              int64   `json:"headers"`
	BestBlockHash        string  `json:"bestblockhash"`
	MedianTime           int64   `json:"mediantime"`
	VerificationProgress float64 `json:"verificationprogress"`
	InitialBlockDownload bool    `json:"initialblockdownload"`
}

type listTransactionsEntry struct {
	Address       string           `json:"address"`
	Category      string           `json:"category"`
	Amount        decimal.Decimal  `json:"amount"`
	Fee           *decimal.Decimal `json:"fee"`
	Confirmations int64            `json:"confirmations"`
	BlockHeight   *int64           `json:"blockheight"`
	BlockHash     string           `json:"blockhash"`
	BlockTime     int64            `json:"blocktime"`
	TxID          string           `json:"txid"`
	Time          int64            `json:"time"`
	Abandoned     bool             `json:"abandoned"`
}

type walletTransaction struct {
	TxID string `json:"txid"`
	Hex  string `json:"hex"`
}

type decodedTransaction struct {
	TxID string     `json:"txid"`
	Vin  []txInput  `json:"vin"`
	Vout []txOutput `json:"vout"`
}

type txInput struct {
	TxID     string `json:"txid"`
	Vout     uint32 `json:"vout"`
	Coinbase string `json:"coinbase"`
}

type txOutput struct {
	N            uint32 `json:"n"`
	ScriptPubKey struct {
		Address   string   `json:"address"`
		Addresses []string `json:"addresses"`
	} `json:"scriptPubKey"`
}

// address returns the single address paid by the output, older nodes only fill addresses.
func (o txOutput) address() string {
	if o.ScriptPubKey.Address != "" {
		return o.ScriptPubKey.Address
	}
	if len(o.ScriptPubKey.Addresses) == 1 {
		return o.ScriptPubKey.Addresses[0]
	}
	return ""
}

type addressInfo struct {
	Address string `json:"address"`
	IsMine  bool   `json:"ismine"`
}

type unspent struct {
	TxID          string          `json:"txid"`
	Vout          uint32          `json:"vout"`
	Amount        decimal.Decimal `json:"amount"`
	Confirmations int64           `json:"confirmations"`
	Spendable     bool            `json:"spendable"`
}

type validateAddressResult struct {
	IsValid bool   `json:"isvalid"`
	Address string `json:"address"`
}
