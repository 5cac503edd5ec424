package netlify

import "time"

// User is the account behind the access token.
//
// Use [Client.GetCurrentUser] to retrieve it:
//
//	user, err := client.GetCurrentUser(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s owns %d sites\n", user.Email, user.SiteCount)
type User struct {
	ID          string  `json:"id"`
	UID         *string `json:"uid,omitempty"`
	FullName    *string `json:"full_name,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	Email       string  `json:"email"`
	AffiliateID *string `json:"affiliate_id,omitempty"`

	// SiteCount is the number of sites the user owns.
	SiteCount int `json:"site_count"`

	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`

	// LoginProviders lists the identity providers linked to the account.
	// Example: ["github", "email"].
	LoginProviders []string `json:"login_providers"`

	// OnboardingProcess maps onboarding steps to their state. Nil when the
	// API omits it.
	OnboardingProcess map[string]string `json:"onboarding_process,omitempty"`
}

// Site is a Netlify site.
//
// Use [Client.GetSite] to fetch one or [Client.ListSites] to list them:
//
//	site, err := client.GetSite(ctx, "3970e0fe-8564-4903-9a55-c5f8de49fb8b")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(site.Name, site.SSLURL)
type Site struct {
	ID    string `json:"id"`
	State string `json:"state"`
	Plan  string `json:"plan"`

	// Name is the site subdomain, e.g. "my-site" for my-site.netlify.app.
	Name string `json:"name"`

	CustomDomain      *string  `json:"custom_domain,omitempty"`
	DomainAliases     []string `json:"domain_aliases"`
	Password          *string  `json:"password,omitempty"`
	NotificationEmail *string  `json:"notification_email,omitempty"`

	URL           string  `json:"url"`
	SSLURL        string  `json:"ssl_url"`
	AdminURL      string  `json:"admin_url"`
	ScreenshotURL *string `json:"screenshot_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID    string  `json:"user_id"`
	SessionID *string `json:"session_id,omitempty"`

	SSL        bool  `json:"ssl"`
	ForceSSL   *bool `json:"force_ssl,omitempty"`
	ManagedDNS bool  `json:"managed_dns"`

	DeployURL string `json:"deploy_url"`

	// PublishedDeploy is the live deploy. Nil for sites that were never
	// deployed.
	PublishedDeploy *SiteDeploy `json:"published_deploy,omitempty"`

	AccountName string  `json:"account_name"`
	AccountSlug string  `json:"account_slug"`
	GitProvider *string `json:"git_provider,omitempty"`
	DeployHook  *string `json:"deploy_hook,omitempty"`

	// Capabilities is free-form and passed through as decoded JSON.
	Capabilities map[string]any `json:"capabilities"`

	ProcessingSettings *SiteProcessingSettings `json:"processing_settings"`
	BuildSettings      *SiteRepoInfo           `json:"build_settings"`

	IDDomain         string            `json:"id_domain"`
	DefaultHooksData *DefaultHooksData `json:"default_hooks_data,omitempty"`
	BuildImage       string            `json:"build_image"`
	Prerender        *string           `json:"prerender,omitempty"`
}

// SiteDeploy is a single deploy of a site.
type SiteDeploy struct {
	ID      string  `json:"id"`
	SiteID  string  `json:"site_id"`
	UserID  string  `json:"user_id"`
	BuildID *string `json:"build_id,omitempty"`

	// State is the deploy lifecycle state.
	// Values include "new", "uploading", "processing", "ready" and "error".
	State string `json:"state"`

	Name          string  `json:"name"`
	URL           string  `json:"url"`
	SSLURL        string  `json:"ssl_url"`
	AdminURL      string  `json:"admin_url"`
	DeployURL     string  `json:"deploy_url"`
	DeploySSLURL  string  `json:"deploy_ssl_url"`
	ScreenshotURL *string `json:"screenshot_url,omitempty"`

	ReviewID *float64 `json:"review_id,omitempty"`
	Draft    bool     `json:"draft"`

	// Required lists file digests the API still expects to receive.
	Required          []string `json:"required"`
	RequiredFunctions []string `json:"required_functions"`

	ErrorMessage *string `json:"error_message,omitempty"`
	Branch       *string `json:"branch,omitempty"`
	CommitRef    *string `json:"commit_ref,omitempty"`
	CommitURL    *string `json:"commit_url,omitempty"`
	Skipped      *bool   `json:"skipped,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`

	Title     *string `json:"title,omitempty"`
	Context   string  `json:"context"`
	Locked    *bool   `json:"locked,omitempty"`
	ReviewURL *string `json:"review_url,omitempty"`

	SiteCapabilities *SiteCapabilities `json:"site_capabilities"`
	Framework        *string           `json:"framework,omitempty"`

	// FunctionSchedules is kept as received. Use [SiteDeploy.Schedules] for
	// typed access.
	FunctionSchedules []any `json:"function_schedules"`
}

// IsReady reports whether the deploy finished processing.
func (d *SiteDeploy) IsReady() bool {
	return d.State == DeployStateReady
}

// Schedules decodes FunctionSchedules into typed entries.
func (d *SiteDeploy) Schedules() ([]*FunctionSchedule, error) {
	return functionScheduleSchema.DecodeList(d.FunctionSchedules)
}

// Deploy states reported by the API.
const (
	DeployStateNew        = "new"
	DeployStateUploading  = "uploading"
	DeployStateProcessing = "processing"
	DeployStateReady      = "ready"
	DeployStateError      = "error"
)

// SiteCapabilities lists the features enabled for a deploy.
type SiteCapabilities struct {
	LargeMediaEnabled bool `json:"large_media_enabled"`
}

// FunctionSchedule is a scheduled function of a deploy.
type FunctionSchedule struct {
	Name string `json:"name"`

	// Cron is the schedule expression, e.g. "@hourly" or "0 0 * * *".
	Cron string `json:"cron"`
}

// DefaultHooksData holds the token used by the default build hooks.
type DefaultHooksData struct {
	AccessToken string `json:"access_token"`
}

// SiteRepoInfo describes the repository a site builds from.
type SiteRepoInfo struct {
	ID              int               `json:"id"`
	Provider        string            `json:"provider"`
	DeployKeyID     *string           `json:"deploy_key_id,omitempty"`
	RepoPath        string            `json:"repo_path"`
	Dir             *string           `json:"dir,omitempty"`
	FunctionsDir    *string           `json:"functions_dir,omitempty"`
	Cmd             *string           `json:"cmd,omitempty"`
	AllowedBranches []string          `json:"allowed_branches"`
	PublicRepo      bool              `json:"public_repo"`
	PrivateLogs     *bool             `json:"private_logs,omitempty"`
	RepoURL         string            `json:"repo_url"`
	Env             map[string]string `json:"env"`
	InstallationID  *int              `json:"installation_id,omitempty"`
	StopBuilds      bool              `json:"stop_builds"`
}

// MinifyOptions controls asset post processing.
type MinifyOptions struct {
	Bundle bool `json:"bundle"`
	Minify bool `json:"minify"`
}

// SiteProcessingSettingsImages controls image post processing.
type SiteProcessingSettingsImages struct {
	Optimize bool `json:"optimize"`
}

// SiteProcessingSettingsHTML controls HTML post processing.
type SiteProcessingSettingsHTML struct {
	PrettyURLs bool `json:"pretty_urls"`
}

// SiteProcessingSettings groups the asset optimization settings of a site.
type SiteProcessingSettings struct {
	Skip   bool                          `json:"skip"`
	CSS    *MinifyOptions                `json:"css"`
	JS     *MinifyOptions                `json:"js"`
	Images *SiteProcessingSettingsImages `json:"images"`
	HTML   *SiteProcessingSettingsHTML   `json:"html"`
}

// SiteFile is a file of a site's published deploy.
type SiteFile struct {
	ID       string  `json:"id"`
	Path     string  `json:"path"`
	SHA      string  `json:"sha"`
	MimeType string  `json:"mime_type"`
	Size     int     `json:"size"`
	DeployID *string `json:"deploy_id,omitempty"`
}

// CreateSiteRequest is the body of [Client.CreateSite] and
// [Client.UpdateSite]. Nil fields are omitted so the API keeps its defaults.
//
//	site, err := client.CreateSite(ctx, &netlify.CreateSiteRequest{
//	    Name: conv.Pointer("my-site"),
//	}, nil)
type CreateSiteRequest struct {
	Name               *string                 `json:"name,omitempty"`
	CustomDomain       *string                 `json:"custom_domain,omitempty"`
	DomainAliases      []string                `json:"domain_aliases,omitempty"`
	Password           *string                 `json:"password,omitempty"`
	NotificationEmail  *string                 `json:"notification_email,omitempty"`
	ForceSSL           *bool                   `json:"force_ssl,omitempty"`
	ProcessingSettings *SiteProcessingSettings `json:"processing_settings,omitempty"`
	Repo               *SiteRepoSetup          `json:"repo,omitempty"`
}

// UpdateSiteRequest is the body of [Client.UpdateSite].
type UpdateSiteRequest = CreateSiteRequest

// SiteRepoSetup links a new site to a repository for continuous deployment.
type SiteRepoSetup struct {
	Provider string  `json:"provider"`
	RepoPath string  `json:"repo_path"`
	Branch   *string `json:"repo_branch,omitempty"`
	Cmd      *string `json:"cmd,omitempty"`
	Dir      *string `json:"dir,omitempty"`
	Private  *bool   `json:"private,omitempty"`
}
