package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the persisted state of one scheduled obligation. It is
// always derived from the sum of the obligation's recorded transactions and
// updated in the same atomic unit that records a transaction.
type PaymentStatus string

const (
	Unpaid  PaymentStatus = "UNPAID"
	Partial PaymentStatus = "PARTIAL"
	Paid    PaymentStatus = "PAID"
)

// SaleStatus is the aggregate state of an installment sale. It is never
// persisted; it is recomputed from the payment rows on every read.
type SaleStatus string

const (
	SaleInProgress SaleStatus = "IN_PROGRESS"
	SaleOverdue    SaleStatus = "OVERDUE"
	SaleCompleted  SaleStatus = "COMPLETED"
)

// InstallmentSale is a financed purchase of a unique single-unit good, repaid
// via a fixed monthly schedule. Created once, never deleted; the referenced
// item carries a referential-integrity guard while the sale exists.
type InstallmentSale struct {
	SaleID            string          `json:"saleID"`
	CustomerID        string          `json:"customerID"`
	ItemKind          ItemKind        `json:"itemKind"`
	ItemID            string          `json:"itemID"`
	SalePrice         decimal.Decimal `json:"salePrice"`
	DownPayment       decimal.Decimal `json:"downPayment"`
	InstallmentCount  int             `json:"installmentCount"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount"`
	StartDate         time.Time       `json:"startDate"`
	Notes             string          `json:"notes"`
	AuditFields
}

// InstallmentPayment is one scheduled obligation within an installment sale.
// A batch of InstallmentCount rows is created with the sale; afterwards only
// the payment applicator mutates them.
type InstallmentPayment struct {
	PaymentID string          `json:"paymentID"`
	SaleID    string          `json:"saleID"`
	Ordinal   int             `json:"ordinal"` // 1-based position in the schedule
	DueDate   time.Time       `json:"dueDate"`
	AmountDue decimal.Decimal `json:"amountDue"`
	Status    PaymentStatus   `json:"status"`
	PaidDate  *time.Time      `json:"paidDate"` // Set when status leaves UNPAID
	AuditFields
}

// InstallmentTransaction is a single money-received event applied against an
// obligation. Append-only; an obligation may have zero, one, or many.
type InstallmentTransaction struct {
	TransactionID string          `json:"transactionID"`
	PaymentID     string          `json:"paymentID"`
	Amount        decimal.Decimal `json:"amount"`
	PaidAt        time.Time       `json:"paidAt"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// DerivePaymentStatus maps the sum of an obligation's transactions onto its
// status: covered in full is PAID, anything in between is PARTIAL.
func DerivePaymentStatus(totalPaid, amountDue decimal.Decimal) PaymentStatus {
	switch {
	case totalPaid.GreaterThanOrEqual(amountDue):
		return Paid
	case totalPaid.IsPositive():
		return Partial
	default:
		return Unpaid
	}
}

// DeriveSaleStatus computes a sale's aggregate state from its payment rows at
// day granularity: COMPLETED when every row is paid, OVERDUE when any unpaid
// row's due date lies strictly before today, otherwise IN_PROGRESS.
func DeriveSaleStatus(payments []InstallmentPayment, now time.Time) SaleStatus {
	if len(payments) == 0 {
		return SaleCompleted
	}
	today := truncateToDay(now)
	completed := true
	for _, p := range payments {
		if p.Status == Paid {
			continue
		}
		completed = false
		if truncateToDay(p.DueDate).Before(today) {
			return SaleOverdue
		}
	}
	if completed {
		return SaleCompleted
	}
	return SaleInProgress
}

// RemainingBalance is the unfloored amount still owed on the schedule:
// installmentCount*installmentAmount minus everything collected so far.
// Callers floor at zero for display; the raw value stays available for
// reconciliation.
func RemainingBalance(sale InstallmentSale, totalPaid decimal.Decimal) decimal.Decimal {
	scheduled := sale.InstallmentAmount.Mul(decimal.NewFromInt(int64(sale.InstallmentCount)))
	return scheduled.Sub(totalPaid)
}

// ScheduleDueDates generates one due date per calendar month starting at
// start. The day of month is clamped to the target month's length so a
// schedule starting on the 31st never skips a short month.
func ScheduleDueDates(start time.Time, count int) []time.Time {
	dates := make([]time.Time, 0, count)
	for k := 0; k < count; k++ {
		dates = append(dates, addMonthsClamped(start, k))
	}
	return dates
}

func addMonthsClamped(t time.Time, months int) time.Time {
	// time.AddDate normalizes Jan 31 + 1 month into Mar 3; anchor to the
	// first of the month instead and clamp the day.
	anchor := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	day := t.Day()
	if last := daysInMonth(anchor.Year(), anchor.Month()); day > last {
		day = last
	}
	return time.Date(anchor.Year(), anchor.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
