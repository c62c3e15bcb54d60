package parser

// DocumentStats contains statistical information about an OpenAPI document
type DocumentStats struct {
	// PathCount is the number of entries under paths
	PathCount int
	// OperationCount is the number of HTTP operations across all paths
	OperationCount int
	// SchemaCount is the number of entries under components.schemas
	SchemaCount int
}

// httpMethods lists the path item keys that hold operations.
var httpMethods = map[string]bool{
	"get":     true,
	"put":     true,
	"post":    true,
	"delete":  true,
	"options": true,
	"head":    true,
	"patch":   true,
	"trace":   true,
	"query":   true,
}

// IsHTTPMethod reports whether a path item key names an operation.
func IsHTTPMethod(key string) bool {
	return httpMethods[key]
}

// GetDocumentStats returns statistics for a generic document tree.
func GetDocumentStats(doc map[string]any) DocumentStats {
	stats := DocumentStats{}
	if paths, ok := doc["paths"].(map[string]any); ok {
		stats.PathCount = len(paths)
		for _, item := range paths {
			methods, ok := item.(map[string]any)
			if !ok {
				continue
			}
			for key, op := range methods {
				if _, isMap := op.(map[string]any); isMap && IsHTTPMethod(key) {
					stats.OperationCount++
				}
			}
		}
	}
	if components, ok := doc["components"].(map[string]any); ok {
		if schemas, ok := components["schemas"].(map[string]any); ok {
			stats.SchemaCount = len(schemas)
		}
	}
	return stats
}
