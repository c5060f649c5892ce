package domain

// TechnicalTag is a dictionary row for a problem tag. Names are unique
// and rows are shared across problems through problem_tags.
type TechnicalTag struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type TechnicalTagTable struct {
	ID   string
	Name string
}

func GetTechnicalTagTable() TechnicalTagTable {
	return TechnicalTagTable{
		ID:   "id",
		Name: "name",
	}
}

func (t TechnicalTagTable) GetTableName() string {
	return "technical_tags"
}

type ProblemTagTable struct {
	ProblemID string
	TagID     string
}

func GetProblemTagTable() ProblemTagTable {
	return ProblemTagTable{
		ProblemID: "problem_id",
		TagID:     "tag_id",
	}
}

func (t ProblemTagTable) GetTableName() string {
	return "problem_tags"
}
