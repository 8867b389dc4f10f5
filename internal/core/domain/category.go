package domain

// CategoryType classifies a category as income- or expense-side.
type CategoryType string

const (
	CategoryExpense CategoryType = "EXPENSE"
	CategoryIncome  CategoryType = "INCOME"
)

// Category is a classification label for transactions. Categories form a tree
// through ParentCategoryID (empty for roots); the tree is kept as flat rows
// with parent links rather than a live object graph, so depth is unbounded in
// the model even though one level of nesting is what gets used in practice.
type Category struct {
	CategoryID       string       `json:"categoryID"` // Primary Key (UUID)
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Type             CategoryType `json:"type"`
	ParentCategoryID string       `json:"parentCategoryID,omitempty"` // Empty for root categories
	AuditFields
}
