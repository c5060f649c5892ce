package yosupo

const (
	CategorySample        = "Sample"
	CategoryDataStructure = "Data Structure"
	CategoryGraph         = "Graph"
	CategoryTree          = "Tree"
	CategoryMath          = "Math"
	CategoryConvolution   = "Convolution"
	CategoryPolynomial    = "Polynomial"
	CategoryMatrix        = "Matrix"
	CategoryString        = "String"
	CategoryGeometry      = "Geometry"
	CategoryOther         = "Other"
)

var knownCategories = map[string]string{
	"Sample":         CategorySample,
	"Data Structure": CategoryDataStructure,
	"Graph":          CategoryGraph,
	"Tree":           CategoryTree,
	"Math":           CategoryMath,
	"Convolution":    CategoryConvolution,
	"Polynomial":     CategoryPolynomial,
	"Matrix":         CategoryMatrix,
	"String":         CategoryString,
	"Geometry":       CategoryGeometry,
}

// ClassifyCategory pins a category name to the closed set; names added
// upstream later surface as Other until the table learns them.
func ClassifyCategory(name string) string {
	if category, ok := knownCategories[name]; ok {
		return category
	}
	return CategoryOther
}
