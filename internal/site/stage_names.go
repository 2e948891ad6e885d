package site

// StageName is a strongly-typed identifier for a build stage. All canonical
// stages are declared as constants here for compile-time safety.
type StageName string

// Canonical stage names, in execution order.
const (
	StagePrepareOutput    StageName = "prepare_output"
	StageCopyStatic       StageName = "copy_static"
	StageScanPosts        StageName = "scan_posts"
	StageScanProjects     StageName = "scan_projects"
	StageScanDevlogs      StageName = "scan_devlogs"
	StageRenderItems      StageName = "render_items"
	StageRenderAggregates StageName = "render_aggregates"
	StageWriteSitemap     StageName = "write_sitemap"
	StageVerifyLinks      StageName = "verify_links"
)

// StageDef pairs a stage name with its executing function.
type StageDef struct {
	Name StageName
	Fn   Stage
}
