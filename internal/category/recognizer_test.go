package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kharcha/internal/category"
)

func TestRecognize(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Weekly groceries run", "Groceries"},
		{"BigBasket order", "Groceries"},
		{"House Rent", "Rent"},
		{"Electricity bill", "Utilities"},
		{"Tuition Fees", "Education"},
		{"Auto to Office", "Transport"},
		{"Petrol", "Fuel"},
		{"Health Medicines", "Medical"},
		{"Car loan EMI", "EMI/Loans"},
		{"Mobile Recharge", "Mobile/Internet"},
		{"Dinner at the cafe", "Dining Out"},
		{"Cleaning supplies", "Household"},
		{"Insurance Premium", "Insurance"},
		{"SIP Investment", "Savings"},
		{"asdkfj", "Other"},
		{"", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, category.Recognize(tt.title))
		})
	}
}

func TestRecognize_PriorityOrder(t *testing.T) {
	// "supermarket" (Groceries) outranks "bill" (Utilities).
	assert.Equal(t, "Groceries", category.Recognize("Supermarket bill"))

	// "water" (Utilities) outranks "ticket" (Transport).
	assert.Equal(t, "Utilities", category.Recognize("Water park ticket"))
}

func TestAll(t *testing.T) {
	labels := category.All()

	assert.Len(t, labels, 14)
	assert.Equal(t, "Groceries", labels[0])
	assert.Equal(t, category.Fallback, labels[len(labels)-1])
}
