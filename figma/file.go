package figma

import (
	"time"

	"github.com/reoring/figskema/codec"
)

type Role string

const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
)

type LinkAccess string

const (
	LinkInherit LinkAccess = "inherit"
	LinkView    LinkAccess = "view"
	LinkEdit    LinkAccess = "edit"
	LinkOrgView LinkAccess = "org_view"
	LinkOrgEdit LinkAccess = "org_edit"
)

type EditorType string

const (
	EditorFigma  EditorType = "figma"
	EditorFigJam EditorType = "figjam"
)

// Metadata is the document information shared by file and file nodes
// responses.
type Metadata struct {
	Name         string     `json:"name"`
	LastModified string     `json:"lastModified"`
	ThumbnailURL string     `json:"thumbnailUrl"`
	Role         Role       `json:"role"`
	Version      string     `json:"version"`
	LinkAccess   LinkAccess `json:"linkAccess"`
	EditorType   EditorType `json:"editorType,omitempty"`
}

// LastModifiedTime parses LastModified as an RFC 3339 timestamp.
func (m *Metadata) LastModifiedTime() (time.Time, error) {
	return codec.ParseTime(m.LastModified)
}

// File is a decoded design document: metadata, the node tree rooted at a
// DOCUMENT node and the catalogs its nodes reference by id.
type File struct {
	Metadata
	Catalogs
	SchemaVersion int           `json:"schemaVersion"`
	Document      *DocumentNode `json:"document"`
}

// FileNodes is the response for a subset of a file's nodes.
type FileNodes struct {
	Metadata
	// Nodes maps each requested id to its subtree. Ids the server could not
	// resolve map to nil.
	Nodes map[string]*FileNode `json:"nodes"`
}

// FileNode is one requested subtree with the catalogs it references. Document
// may be any node variant.
type FileNode struct {
	Catalogs
	SchemaVersion int  `json:"schemaVersion"`
	Document      Node `json:"document"`
}

// Images is the response of an image render request.
type Images struct {
	// Err is the server-side error message, nil on success.
	Err *string `json:"err"`
	// Images maps node ids to rendered image URLs. A node that failed to
	// render maps to "".
	Images map[string]string `json:"images"`
}
