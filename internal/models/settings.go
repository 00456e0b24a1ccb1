package models

// Settings is the single shop settings record. The server keeps exactly one
// row; the id is always 1 on update.
type Settings struct {
	ID          int64  `json:"id"`
	ShopName    string `json:"shopName"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	TaxID       string `json:"taxId"`
	PromptpayID string `json:"promptpayId"`
}
