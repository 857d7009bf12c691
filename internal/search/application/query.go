package application

import (
	"github.com/mydrtv/backend/pkg/domain"
)

const SearchProgramsQueryName = "SearchPrograms"

// SearchProgramsData carries the search parameters; zero values mean "no
// filter".
type SearchProgramsData struct {
	UserID string
	Query  string
	Year   int
	Genre  string
}

type searchProgramsQuery struct {
	data SearchProgramsData
}

func (q searchProgramsQuery) QueryName() string {
	return SearchProgramsQueryName
}

func (q searchProgramsQuery) Payload() SearchProgramsData {
	return q.data
}

func NewSearchProgramsQuery(data SearchProgramsData) domain.Query[SearchProgramsData] {
	return searchProgramsQuery{data: data}
}
