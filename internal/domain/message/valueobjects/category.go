package valueobjects

import "fmt"

// Category classifies an inbound client message. It is optional on a
// message; the empty value means uncategorized.
type Category string

const (
	CategorySupport  Category = "support"
	CategoryInquiry  Category = "inquiry"
	CategoryFeedback Category = "feedback"
	CategoryBilling  Category = "billing"
	CategoryOther    Category = "other"
)

var validCategories = map[Category]bool{
	CategorySupport:  true,
	CategoryInquiry:  true,
	CategoryFeedback: true,
	CategoryBilling:  true,
	CategoryOther:    true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

// IsZero reports whether the category is unset.
func (c Category) IsZero() bool {
	return c == ""
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid message category: %s", s)
	}
	return c, nil
}
