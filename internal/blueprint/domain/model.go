package domain

// Spec is a caller-supplied description of a software project. It is the
// input to both the integrity checker and the test plan deriver, and is
// never mutated or retained across requests.
type Spec struct {
	Meta          Meta          `json:"meta"`
	Stack         Stack         `json:"stack"`
	Auth          Auth          `json:"auth"`
	Features      []Feature     `json:"features"`
	Entities      []Entity      `json:"entities"`
	API           API           `json:"api"`
	Tests         Tests         `json:"tests"`
	Deployment    Deployment    `json:"deployment"`
	Documentation Documentation `json:"documentation"`
}

type Meta struct {
	ProjectName string `json:"project_name"`
	Summary     string `json:"summary"`
}

// Stack type tags.
const (
	StackFrontend  = "frontend"
	StackBackend   = "backend"
	StackFullstack = "fullstack"
)

// Architecture tags.
const (
	ArchMonolith      = "monolith"
	ArchMicroservices = "microservices"
	ArchServerless    = "serverless"
	ArchEventDriven   = "event-driven"
)

type Stack struct {
	Type         string      `json:"type"`
	Frontend     *LayerStack `json:"frontend,omitempty"`
	Backend      *LayerStack `json:"backend,omitempty"`
	Database     *Database   `json:"database,omitempty"`
	Architecture string      `json:"architecture,omitempty"`
}

// LayerStack describes one side of the stack (frontend or backend).
type LayerStack struct {
	Framework string   `json:"framework"`
	Language  string   `json:"language"`
	Libraries []string `json:"libraries,omitempty"`
}

// Database is nil when the project explicitly runs without persistence.
// A nil database is a valid MVP state, not missing input.
type Database struct {
	Type     string `json:"type"`
	Provider string `json:"provider,omitempty"`
}

type Auth struct {
	Enabled     bool                `json:"enabled"`
	Methods     []string            `json:"methods,omitempty"`
	Roles       []string            `json:"roles,omitempty"`
	Permissions map[string][]string `json:"permissions,omitempty"`
	Security    *Security           `json:"security,omitempty"`
}

type Security struct {
	PasswordPolicy *PasswordPolicy `json:"password_policy,omitempty"`
	RateLimiting   bool            `json:"rate_limiting"`
	TwoFactor      bool            `json:"two_factor"`
}

type PasswordPolicy struct {
	MinLength        int  `json:"min_length,omitempty"`
	RequireUppercase bool `json:"require_uppercase,omitempty"`
	RequireNumbers   bool `json:"require_numbers,omitempty"`
	RequireSymbols   bool `json:"require_symbols,omitempty"`
}

type Feature struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	Entities     []string       `json:"entities,omitempty"`
	Dependencies []string       `json:"dependencies,omitempty"`
	Settings     map[string]any `json:"settings,omitempty"`
}

// Field type tags.
const (
	FieldString  = "string"
	FieldNumber  = "number"
	FieldBoolean = "boolean"
	FieldDate    = "date"
	FieldEnum    = "enum"
	FieldJSON    = "json"
)

type Entity struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Fields      []Field    `json:"fields,omitempty"`
	Relations   []Relation `json:"relations,omitempty"`
}

type Field struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Unique   bool   `json:"unique"`
	Default  any    `json:"default,omitempty"`
}

// Relation type tags.
const (
	RelationOneToOne   = "one-to-one"
	RelationOneToMany  = "one-to-many"
	RelationManyToMany = "many-to-many"
)

// Relation.Target is a name-based weak reference: it is never resolved to
// a live Entity and no referential integrity is enforced.
type Relation struct {
	Type         string `json:"type"`
	Target       string `json:"target"`
	Field        string `json:"field,omitempty"`
	ReverseField string `json:"reverse_field,omitempty"`
}

// API type tags.
const (
	APIRest    = "rest"
	APIGraphQL = "graphql"
	APINone    = "none"
)

type API struct {
	Type      string     `json:"type"`
	Endpoints []Endpoint `json:"endpoints,omitempty"`
	Docs      string     `json:"docs,omitempty"`
}

// Endpoint.Entity is a weak reference by name, same as Relation.Target.
type Endpoint struct {
	ID           string   `json:"id"`
	Entity       string   `json:"entity,omitempty"`
	Path         string   `json:"path"`
	Methods      []string `json:"methods,omitempty"`
	AuthRequired bool     `json:"auth_required"`
	Description  string   `json:"description,omitempty"`
}

type Tests struct {
	Unit             bool     `json:"unit"`
	Integration      bool     `json:"integration"`
	E2E              bool     `json:"e2e"`
	ManualChecklists bool     `json:"manual_checklists"`
	Frameworks       []string `json:"frameworks,omitempty"`
}

type Deployment struct {
	Platform string `json:"platform,omitempty"`
	CI       CI     `json:"ci"`
}

type CI struct {
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider,omitempty"`
}

type Documentation struct {
	IncludeReadme   bool `json:"include_readme"`
	IncludeAPIDocs  bool `json:"include_api_docs"`
	IncludeComments bool `json:"include_comments"`
}
