package model

// カートの明細。
// 商品名・価格・説明は追加時点の値を非正規化して保存する。
type CartLineItem struct {
	ProductID   string `firestore:"productId" json:"product_id"`
	Name        string `firestore:"name" json:"name"`
	Price       int64  `firestore:"price" json:"price"`
	Description string `firestore:"description" json:"description"`
	Quantity    int64  `firestore:"quantity" json:"quantity"`
}
