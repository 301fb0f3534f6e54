package model

import "time"

// 商品。管理者が作成し、それ以外の経路では読み取り専用。
// IDはFirestoreのdocIdで、doc本体には持たない。
type Product struct {
	ID          string    `firestore:"-" json:"id"`
	Name        string    `firestore:"name" json:"name"`
	Price       int64     `firestore:"price" json:"price"`
	Description string    `firestore:"description" json:"description"`
	ImageURL    string    `firestore:"imageUrl" json:"image_url"`
	Category    string    `firestore:"category" json:"category"`
	CreatedAt   time.Time `firestore:"createdAt" json:"created_at"`
}
