package types

// RecipeRecord is the assembled recipe.  The package name and version
// fields hold template placeholders, never resolved values: the record
// is rendered by a separate templating stage and must re-derive those
// per version.  Field names and nesting are a stable contract with
// that stage.
type RecipeRecord struct {
	Package      RecipePackage      `yaml:"package"`
	Source       RecipeSource       `yaml:"source"`
	Build        RecipeBuild        `yaml:"build"`
	Requirements RecipeRequirements `yaml:"requirements"`
	Test         RecipeTest         `yaml:"test"`
	About        RecipeAbout        `yaml:"about"`
	NeedCompiler bool               `yaml:"need_compiler,omitempty"`
}

type RecipePackage struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

type RecipeSource struct {
	URL    string `yaml:"url"`
	SHA256 string `yaml:"sha256"`
}

type RecipeBuild struct {
	Number         int      `yaml:"number"`
	MergeBuildHost bool     `yaml:"merge_build_host"`
	Script         string   `yaml:"script"`
	Rpaths         []string `yaml:"rpaths"`
}

type RecipeRequirements struct {
	Build []string `yaml:"build,omitempty"`
	Host  []string `yaml:"host"`
	Run   []string `yaml:"run"`
}

type RecipeTest struct {
	Commands []string `yaml:"commands"`
}

type RecipeAbout struct {
	Home    string `yaml:"home"`
	DevURL  string `yaml:"dev_url"`
	Summary string `yaml:"summary,omitempty"`
	License string `yaml:"license"`
}

// ProvenanceComment is the original manifest echoed as comment lines.
// It is emitted for human inspection only and never parsed back.
type ProvenanceComment []string
