package payment

import "time"

const (
	MethodCash         = "cash"
	MethodCard         = "card"
	MethodOnline       = "online"
	MethodBankTransfer = "bank_transfer"
)

type Payment struct {
	ID          int       `db:"id" json:"id"`
	MemberID    int       `db:"member_id" json:"member_id"`
	AmountCents int64     `db:"amount_cents" json:"amount_cents"`
	Method      string    `db:"method" json:"method"`
	Note        *string   `db:"note" json:"note,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type PaymentWithMember struct {
	Payment
	MemberName string `db:"member_name" json:"member_name"`
}

type CreatePaymentRequest struct {
	MemberID    int     `json:"member_id" binding:"required"`
	AmountCents int64   `json:"amount_cents" binding:"required,gt=0"`
	Method      string  `json:"method" binding:"required,oneof=cash card online bank_transfer"`
	Note        *string `json:"note"`
}
