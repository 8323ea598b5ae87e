package rules

import "github.com/beatrizserrano/training-material/pkg/lint"

// RegisterAll registers every built-in rule with the given registry.
func RegisterAll(registry *lint.Registry) {
	all := []lint.Rule{
		NewBoxTitleRule(),
		NewTargetBlankRule(),
		NewSnippetExistsRule(),
		NewCitationExistsRule(),
		NewIconExistsRule(),
		NewBoldedHeadingRule(),
		NewLinkTextRule(),
		NewStepListRule(),
		NewToolIDRule(),
		NewYoutubeIframeRule(),
		NewTemplateDelimiterRule(),
		NewLinkedFileRule(),
		NewHeadingLevelRule(),
		NewAdjacentSnippetsRule(),
		NewBranchChoicesRule(),
		NewBibResolvableRule(),
		NewBibTitleRule(),
		NewWorkflowKeysRule(),
		NewWorkflowTestsRule(),
		NewWorkflowTestOutputsRule(),
		NewWorkflowTagsRule(),
		NewPathCharsRule(),
		NewSymlinkRule(),
		NewDataLibraryNameRule(),
		NewCodeFenceLanguageRule(),
	}

	for _, rule := range all {
		registry.Register(rule)
	}
}

//nolint:gochecknoinits // Rule self-registration mirrors database/sql drivers
func init() {
	RegisterAll(lint.DefaultRegistry)
}
