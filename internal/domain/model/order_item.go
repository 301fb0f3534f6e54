package model

// 注文明細。確定時点のカート明細のスナップショット。
type OrderItem struct {
	ProductID string `firestore:"productId" json:"product_id"`
	Name      string `firestore:"name" json:"name"`
	Price     int64  `firestore:"price" json:"price"`
	Quantity  int64  `firestore:"quantity" json:"quantity"`
}
