package domain

// Asset 资产（货币）实体
type Asset struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Accuracy int    `json:"accuracy"`
}

// Market 市场实体
type Market struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
