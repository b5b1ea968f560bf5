package project

type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UnknownName is used when an entry references a project id that is not in
// the catalog. Unknown ids never fail entry creation.
const UnknownName = "Unknown Project"

// The catalog is fixed and read-only.
var catalog = []Project{
	{ID: "proj-1", Name: "Project Alpha"},
	{ID: "proj-2", Name: "Project Beta"},
	{ID: "proj-3", Name: "Project Gamma"},
}

// Catalog returns a copy so callers cannot mutate the shared list.
func Catalog() []Project {
	out := make([]Project, len(catalog))
	copy(out, catalog)

	return out
}

func NameByID(id string) string {
	for _, p := range catalog {
		if p.ID == id {
			return p.Name
		}
	}

	return UnknownName
}
