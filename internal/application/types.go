package application

import "jarscope/internal/domain"

// Re-export input kinds for use by adapters
type InputKind = domain.InputKind

const (
	InputUnknown = domain.InputUnknown
	InputArchive = domain.InputArchive
	InputClass   = domain.InputClass
)

// Re-export domain types for use by adapters
type (
	Result          = domain.Result
	PathTree        = domain.PathTree
	PathNode        = domain.PathNode
	NodeID          = domain.NodeID
	TreeEntry       = domain.TreeEntry
	DisplaySettings = domain.DisplaySettings
	SettingKey      = domain.SettingKey
)

// DownloadName returns the export file name for an input name
func DownloadName(name string) string {
	return domain.DownloadName(name)
}

// BuildPathTree builds the navigation tree for archive member paths
func BuildPathTree(paths []string) *PathTree {
	return domain.BuildPathTree(paths)
}

// ExpandState tracks open directories of a PathTree
type ExpandState = domain.ExpandState

// NewExpandState opens every directory shallower than depth
func NewExpandState(t *PathTree, depth int) *ExpandState {
	return domain.NewExpandState(t, depth)
}

// SettingKeys lists every display setting in display order
var SettingKeys = domain.SettingKeys

// NoParent is the Parent of a top-level PathNode
const NoParent = domain.NoParent

const (
	SettingShowLineNumbers     = domain.SettingShowLineNumbers
	SettingInlineSimpleMethods = domain.SettingInlineSimpleMethods
	SettingRemoveComments      = domain.SettingRemoveComments
	SettingSimplifyExpressions = domain.SettingSimplifyExpressions
)
