package schema

const (
	pathPipeline     = "posixpath"
	boolPipeline     = "to_int"
	listPipeline     = "no_empty | join | strip"
	pathListPipeline = "strip_each | no_empty | posixpath_each | join"
)

var defaultPipelines = map[string]string{
	"file_t":        pathPipeline,
	"dir_t":         pathPipeline,
	"directory_t":   pathPipeline,
	"bool":          boolPipeline,
	"bool_t":        boolPipeline,
	"str_list":      listPipeline,
	"string_list":   listPipeline,
	"string_list_t": listPipeline,
	"file_list_t":   pathListPipeline,
	"files_t":       pathListPipeline,
	"file_list":     pathListPipeline,
	"dir_list_t":    pathListPipeline,
	"dir_list":      pathListPipeline,
	"dirs_t":        pathListPipeline,
	"path_list":     pathListPipeline,
	"paths_t":       pathListPipeline,
}

// DefaultPipeline returns the pipeline applied to variables of typeName
// that do not declare one. Unknown types get the identity pipeline "".
func DefaultPipeline(typeName string) string {
	return defaultPipelines[typeName]
}
