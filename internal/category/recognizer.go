package category

import "strings"

// Fallback is returned when no keyword rule matches a title.
const Fallback = "Other"

// rule maps a set of title keywords to a category label.
// Rules are evaluated in order; the first match wins.
type rule struct {
	keywords []string
	label    string
}

var rules = []rule{
	{[]string{"grocery", "groceries", "supermarket", "mart", "bigbasket", "blinkit"}, "Groceries"},
	{[]string{"rent", "lease"}, "Rent"},
	{[]string{"electric", "electricity", "water", "sewage", "gas", "bill", "utility"}, "Utilities"},
	{[]string{"school", "college", "tuition", "course", "exam", "udemy", "coursera"}, "Education"},
	{[]string{"uber", "ola", "bus", "metro", "train", "taxi", "cab", "auto", "flight", "ticket"}, "Transport"},
	{[]string{"fuel", "petrol", "diesel", "gasoline"}, "Fuel"},
	{[]string{"med", "hospital", "clinic", "pharmacy", "chemist", "doctor"}, "Medical"},
	{[]string{"emi", "loan", "mortgage"}, "EMI/Loans"},
	{[]string{"mobile", "internet", "broadband", "fiber", "recharge", "wifi"}, "Mobile/Internet"},
	{[]string{"restaurant", "dining", "dine", "cafe", "coffee", "food", "swiggy", "zomato"}, "Dining Out"},
	{[]string{"household", "cleaning", "detergent", "utensil", "home needs"}, "Household"},
	{[]string{"insurance", "premium"}, "Insurance"},
	{[]string{"saving", "deposit", "rd", "fd", "sip"}, "Savings"},
}

// Recognize guesses a category label for an expense title by substring
// keyword matching. Matching is case-insensitive. It never fails; titles
// that match no rule map to Fallback.
func Recognize(title string) string {
	t := strings.ToLower(title)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(t, kw) {
				return r.label
			}
		}
	}

	return Fallback
}

// All returns every category label in rule priority order, with the
// fallback label last. The slice is a copy and safe to modify.
func All() []string {
	labels := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		labels = append(labels, r.label)
	}

	return append(labels, Fallback)
}
