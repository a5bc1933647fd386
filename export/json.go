package export

import "encoding/json"

// GenerateJSON dumps the raw course tree.
func GenerateJSON(pkg *CoursePackage) ([]byte, error) {
	return json.MarshalIndent(pkg, "", "  ")
}
