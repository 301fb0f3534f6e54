package model

import "time"

type OrderStatus string

const (
	// 作成時の固定ステータス。この系では遷移しない。
	OrderStatusPending OrderStatus = "Pending"
)

// 注文。確定後は不変。
// TotalAmountは確定時点のカートから一度だけ計算した値を保存する（再計算しない）。
type Order struct {
	ID          string      `firestore:"-" json:"id"`
	UserID      string      `firestore:"userId" json:"user_id"`
	Items       []OrderItem `firestore:"items" json:"items"`
	TotalAmount int64       `firestore:"totalAmount" json:"total_amount"`
	Status      OrderStatus `firestore:"status" json:"status"`
	CreatedAt   time.Time   `firestore:"createdAt" json:"created_at"`
}
