package netlify

import (
	"time"

	"github.com/tomblancdev/netlify-go/internal/decode"
)

// Response schemas. Field order is the order in which decode errors are
// reported.

var userSchema = decode.Define("User", func(o *decode.Object) *User {
	return &User{
		ID:                decode.Get[string](o, "id"),
		UID:               decode.GetPtr[string](o, "uid"),
		FullName:          decode.GetPtr[string](o, "full_name"),
		AvatarURL:         decode.GetPtr[string](o, "avatar_url"),
		Email:             decode.Get[string](o, "email"),
		AffiliateID:       decode.GetPtr[string](o, "affiliate_id"),
		SiteCount:         getInt(o, "site_count"),
		CreatedAt:         decode.Get[time.Time](o, "created_at"),
		LastLogin:         decode.GetPtr[time.Time](o, "last_login"),
		LoginProviders:    decode.GetSlice[string](o, "login_providers"),
		OnboardingProcess: decode.GetMap[string](o, "onboarding_process"),
	}
},
	decode.Field{Name: "id", Type: decode.String()},
	decode.Field{Name: "uid", Type: decode.Optional(decode.String())},
	decode.Field{Name: "full_name", Type: decode.Optional(decode.String())},
	decode.Field{Name: "avatar_url", Type: decode.Optional(decode.String())},
	decode.Field{Name: "email", Type: decode.String()},
	decode.Field{Name: "affiliate_id", Type: decode.Optional(decode.String())},
	decode.Field{Name: "site_count", Type: decode.Int()},
	decode.Field{Name: "created_at", Type: decode.DateTime()},
	decode.Field{Name: "last_login", Type: decode.Optional(decode.DateTime())},
	decode.Field{Name: "login_providers", Type: decode.List(decode.String())},
	decode.Field{Name: "onboarding_process", Type: decode.Optional(decode.Map(decode.String(), decode.String()))},
)

var siteCapabilitiesSchema = decode.Define("SiteCapabilities", func(o *decode.Object) *SiteCapabilities {
	return &SiteCapabilities{LargeMediaEnabled: decode.Get[bool](o, "large_media_enabled")}
},
	decode.Field{Name: "large_media_enabled", Type: decode.Bool()},
)

var functionScheduleSchema = decode.Define("FunctionSchedule", func(o *decode.Object) *FunctionSchedule {
	return &FunctionSchedule{
		Name: decode.Get[string](o, "name"),
		Cron: decode.Get[string](o, "cron"),
	}
},
	decode.Field{Name: "name", Type: decode.String()},
	decode.Field{Name: "cron", Type: decode.String()},
)

var siteDeploySchema = decode.Define("SiteDeploy", func(o *decode.Object) *SiteDeploy {
	return &SiteDeploy{
		ID:                decode.Get[string](o, "id"),
		SiteID:            decode.Get[string](o, "site_id"),
		UserID:            decode.Get[string](o, "user_id"),
		BuildID:           decode.GetPtr[string](o, "build_id"),
		State:             decode.Get[string](o, "state"),
		Name:              decode.Get[string](o, "name"),
		URL:               decode.Get[string](o, "url"),
		SSLURL:            decode.Get[string](o, "ssl_url"),
		AdminURL:          decode.Get[string](o, "admin_url"),
		DeployURL:         decode.Get[string](o, "deploy_url"),
		DeploySSLURL:      decode.Get[string](o, "deploy_ssl_url"),
		ScreenshotURL:     decode.GetPtr[string](o, "screenshot_url"),
		ReviewID:          decode.GetPtr[float64](o, "review_id"),
		Draft:             decode.Get[bool](o, "draft"),
		Required:          decode.GetSlice[string](o, "required"),
		RequiredFunctions: decode.GetSlice[string](o, "required_functions"),
		ErrorMessage:      decode.GetPtr[string](o, "error_message"),
		Branch:            decode.GetPtr[string](o, "branch"),
		CommitRef:         decode.GetPtr[string](o, "commit_ref"),
		CommitURL:         decode.GetPtr[string](o, "commit_url"),
		Skipped:           decode.GetPtr[bool](o, "skipped"),
		CreatedAt:         decode.Get[time.Time](o, "created_at"),
		UpdatedAt:         decode.GetPtr[time.Time](o, "updated_at"),
		PublishedAt:       decode.GetPtr[time.Time](o, "published_at"),
		Title:             decode.GetPtr[string](o, "title"),
		Context:           decode.Get[string](o, "context"),
		Locked:            decode.GetPtr[bool](o, "locked"),
		ReviewURL:         decode.GetPtr[string](o, "review_url"),
		SiteCapabilities:  decode.Get[*SiteCapabilities](o, "site_capabilities"),
		Framework:         decode.GetPtr[string](o, "framework"),
		FunctionSchedules: decode.Get[[]any](o, "function_schedules"),
	}
},
	decode.Field{Name: "id", Type: decode.String()},
	decode.Field{Name: "site_id", Type: decode.String()},
	decode.Field{Name: "user_id", Type: decode.String()},
	decode.Field{Name: "build_id", Type: decode.Optional(decode.String())},
	decode.Field{Name: "state", Type: decode.String()},
	decode.Field{Name: "name", Type: decode.String()},
	decode.Field{Name: "url", Type: decode.String()},
	decode.Field{Name: "ssl_url", Type: decode.String()},
	decode.Field{Name: "admin_url", Type: decode.String()},
	decode.Field{Name: "deploy_url", Type: decode.String()},
	decode.Field{Name: "deploy_ssl_url", Type: decode.String()},
	decode.Field{Name: "screenshot_url", Type: decode.Optional(decode.String())},
	decode.Field{Name: "review_id", Type: decode.Optional(decode.Float())},
	decode.Field{Name: "draft", Type: decode.Bool()},
	decode.Field{Name: "required", Type: decode.List(decode.String())},
	decode.Field{Name: "required_functions", Type: decode.List(decode.String())},
	decode.Field{Name: "error_message", Type: decode.Optional(decode.String())},
	decode.Field{Name: "branch", Type: decode.Optional(decode.String())},
	decode.Field{Name: "commit_ref", Type: decode.Optional(decode.String())},
	decode.Field{Name: "commit_url", Type: decode.Optional(decode.String())},
	decode.Field{Name: "skipped", Type: decode.Optional(decode.Bool())},
	decode.Field{Name: "created_at", Type: decode.DateTime()},
	decode.Field{Name: "updated_at", Type: decode.Optional(decode.DateTime())},
	decode.Field{Name: "published_at", Type: decode.Optional(decode.DateTime())},
	decode.Field{Name: "title", Type: decode.Optional(decode.String())},
	decode.Field{Name: "context", Type: decode.String()},
	decode.Field{Name: "locked", Type: decode.Optional(decode.Bool())},
	decode.Field{Name: "review_url", Type: decode.Optional(decode.String())},
	decode.Field{Name: "site_capabilities", Type: siteCapabilitiesSchema.Type()},
	decode.Field{Name: "framework", Type: decode.Optional(decode.String())},
	// Bare list: shape is checked, entries are kept as received.
	decode.Field{Name: "function_schedules", Type: decode.List()},
)

var defaultHooksDataSchema = decode.Define("DefaultHooksData", func(o *decode.Object) *DefaultHooksData {
	return &DefaultHooksData{AccessToken: decode.Get[string](o, "access_token")}
},
	decode.Field{Name: "access_token", Type: decode.String()},
)

var siteRepoInfoSchema = decode.Define("SiteRepoInfo", func(o *decode.Object) *SiteRepoInfo {
	return &SiteRepoInfo{
		ID:              getInt(o, "id"),
		Provider:        decode.Get[string](o, "provider"),
		DeployKeyID:     decode.GetPtr[string](o, "deploy_key_id"),
		RepoPath:        decode.Get[string](o, "repo_path"),
		Dir:             decode.GetPtr[string](o, "dir"),
		FunctionsDir:    decode.GetPtr[string](o, "functions_dir"),
		Cmd:             decode.GetPtr[string](o, "cmd"),
		AllowedBranches: decode.GetSlice[string](o, "allowed_branches"),
		PublicRepo:      decode.Get[bool](o, "public_repo"),
		PrivateLogs:     decode.GetPtr[bool](o, "private_logs"),
		RepoURL:         decode.Get[string](o, "repo_url"),
		Env:             decode.GetMap[string](o, "env"),
		InstallationID:  getIntPtr(o, "installation_id"),
		StopBuilds:      decode.Get[bool](o, "stop_builds"),
	}
},
	decode.Field{Name: "id", Type: decode.Int()},
	decode.Field{Name: "provider", Type: decode.String()},
	decode.Field{Name: "deploy_key_id", Type: decode.Optional(decode.String())},
	decode.Field{Name: "repo_path", Type: decode.String()},
	decode.Field{Name: "dir", Type: decode.Optional(decode.String())},
	decode.Field{Name: "functions_dir", Type: decode.Optional(decode.String())},
	decode.Field{Name: "cmd", Type: decode.Optional(decode.String())},
	decode.Field{Name: "allowed_branches", Type: decode.List(decode.String())},
	decode.Field{Name: "public_repo", Type: decode.Bool()},
	decode.Field{Name: "private_logs", Type: decode.Optional(decode.Bool())},
	decode.Field{Name: "repo_url", Type: decode.String()},
	decode.Field{Name: "env", Type: decode.Map(decode.String(), decode.String())},
	decode.Field{Name: "installation_id", Type: decode.Optional(decode.Int())},
	decode.Field{Name: "stop_builds", Type: decode.Bool()},
)

var minifyOptionsSchema = decode.Define("MinifyOptions", func(o *decode.Object) *MinifyOptions {
	return &MinifyOptions{
		Bundle: decode.Get[bool](o, "bundle"),
		Minify: decode.Get[bool](o, "minify"),
	}
},
	decode.Field{Name: "bundle", Type: decode.Bool()},
	decode.Field{Name: "minify", Type: decode.Bool()},
)

var processingImagesSchema = decode.Define("SiteProcessingSettingsImages", func(o *decode.Object) *SiteProcessingSettingsImages {
	return &SiteProcessingSettingsImages{Optimize: decode.Get[bool](o, "optimize")}
},
	decode.Field{Name: "optimize", Type: decode.Bool()},
)

var processingHTMLSchema = decode.Define("SiteProcessingSettingsHTML", func(o *decode.Object) *SiteProcessingSettingsHTML {
	return &SiteProcessingSettingsHTML{PrettyURLs: decode.Get[bool](o, "pretty_urls")}
},
	decode.Field{Name: "pretty_urls", Type: decode.Bool()},
)

var processingSettingsSchema = decode.Define("SiteProcessingSettings", func(o *decode.Object) *SiteProcessingSettings {
	return &SiteProcessingSettings{
		Skip:   decode.Get[bool](o, "skip"),
		CSS:    decode.Get[*MinifyOptions](o, "css"),
		JS:     decode.Get[*MinifyOptions](o, "js"),
		Images: decode.Get[*SiteProcessingSettingsImages](o, "images"),
		HTML:   decode.Get[*SiteProcessingSettingsHTML](o, "html"),
	}
},
	decode.Field{Name: "skip", Type: decode.Bool()},
	decode.Field{Name: "css", Type: minifyOptionsSchema.Type()},
	decode.Field{Name: "js", Type: minifyOptionsSchema.Type()},
	decode.Field{Name: "images", Type: processingImagesSchema.Type()},
	decode.Field{Name: "html", Type: processingHTMLSchema.Type()},
)

var siteSchema = decode.Define("Site", func(o *decode.Object) *Site {
	return &Site{
		ID:                 decode.Get[string](o, "id"),
		State:              decode.Get[string](o, "state"),
		Plan:               decode.Get[string](o, "plan"),
		Name:               decode.Get[string](o, "name"),
		CustomDomain:       decode.GetPtr[string](o, "custom_domain"),
		DomainAliases:      decode.GetSlice[string](o, "domain_aliases"),
		Password:           decode.GetPtr[string](o, "password"),
		NotificationEmail:  decode.GetPtr[string](o, "notification_email"),
		URL:                decode.Get[string](o, "url"),
		SSLURL:             decode.Get[string](o, "ssl_url"),
		AdminURL:           decode.Get[string](o, "admin_url"),
		ScreenshotURL:      decode.GetPtr[string](o, "screenshot_url"),
		CreatedAt:          decode.Get[time.Time](o, "created_at"),
		UpdatedAt:          decode.Get[time.Time](o, "updated_at"),
		UserID:             decode.Get[string](o, "user_id"),
		SessionID:          decode.GetPtr[string](o, "session_id"),
		SSL:                decode.Get[bool](o, "ssl"),
		ForceSSL:           decode.GetPtr[bool](o, "force_ssl"),
		ManagedDNS:         decode.Get[bool](o, "managed_dns"),
		DeployURL:          decode.Get[string](o, "deploy_url"),
		PublishedDeploy:    decode.Get[*SiteDeploy](o, "published_deploy"),
		AccountName:        decode.Get[string](o, "account_name"),
		AccountSlug:        decode.Get[string](o, "account_slug"),
		GitProvider:        decode.GetPtr[string](o, "git_provider"),
		DeployHook:         decode.GetPtr[string](o, "deploy_hook"),
		Capabilities:       decode.GetMap[any](o, "capabilities"),
		ProcessingSettings: decode.Get[*SiteProcessingSettings](o, "processing_settings"),
		BuildSettings:      decode.Get[*SiteRepoInfo](o, "build_settings"),
		IDDomain:           decode.Get[string](o, "id_domain"),
		DefaultHooksData:   decode.Get[*DefaultHooksData](o, "default_hooks_data"),
		BuildImage:         decode.Get[string](o, "build_image"),
		Prerender:          decode.GetPtr[string](o, "prerender"),
	}
},
	decode.Field{Name: "id", Type: decode.String()},
	decode.Field{Name: "state", Type: decode.String()},
	decode.Field{Name: "plan", Type: decode.String()},
	decode.Field{Name: "name", Type: decode.String()},
	decode.Field{Name: "custom_domain", Type: decode.Optional(decode.String())},
	decode.Field{Name: "domain_aliases", Type: decode.List(decode.String())},
	decode.Field{Name: "password", Type: decode.Optional(decode.String())},
	decode.Field{Name: "notification_email", Type: decode.Optional(decode.String())},
	decode.Field{Name: "url", Type: decode.String()},
	decode.Field{Name: "ssl_url", Type: decode.String()},
	decode.Field{Name: "admin_url", Type: decode.String()},
	decode.Field{Name: "screenshot_url", Type: decode.Optional(decode.String())},
	decode.Field{Name: "created_at", Type: decode.DateTime()},
	decode.Field{Name: "updated_at", Type: decode.DateTime()},
	decode.Field{Name: "user_id", Type: decode.String()},
	decode.Field{Name: "session_id", Type: decode.Optional(decode.String())},
	decode.Field{Name: "ssl", Type: decode.Bool()},
	decode.Field{Name: "force_ssl", Type: decode.Optional(decode.Bool())},
	decode.Field{Name: "managed_dns", Type: decode.Bool()},
	decode.Field{Name: "deploy_url", Type: decode.String()},
	decode.Field{Name: "published_deploy", Type: decode.Optional(siteDeploySchema.Type())},
	decode.Field{Name: "account_name", Type: decode.String()},
	decode.Field{Name: "account_slug", Type: decode.String()},
	decode.Field{Name: "git_provider", Type: decode.Optional(decode.String())},
	decode.Field{Name: "deploy_hook", Type: decode.Optional(decode.String())},
	decode.Field{Name: "capabilities", Type: decode.Map(decode.String(), decode.Any())},
	decode.Field{Name: "processing_settings", Type: processingSettingsSchema.Type()},
	decode.Field{Name: "build_settings", Type: siteRepoInfoSchema.Type()},
	decode.Field{Name: "id_domain", Type: decode.String()},
	decode.Field{Name: "default_hooks_data", Type: decode.Optional(defaultHooksDataSchema.Type())},
	decode.Field{Name: "build_image", Type: decode.String()},
	decode.Field{Name: "prerender", Type: decode.Optional(decode.String())},
)

var siteFileSchema = decode.Define("SiteFile", func(o *decode.Object) *SiteFile {
	return &SiteFile{
		ID:       decode.Get[string](o, "id"),
		Path:     decode.Get[string](o, "path"),
		SHA:      decode.Get[string](o, "sha"),
		MimeType: decode.Get[string](o, "mime_type"),
		Size:     getInt(o, "size"),
		DeployID: decode.GetPtr[string](o, "deploy_id"),
	}
},
	decode.Field{Name: "id", Type: decode.String()},
	decode.Field{Name: "path", Type: decode.String()},
	decode.Field{Name: "sha", Type: decode.String()},
	decode.Field{Name: "mime_type", Type: decode.String()},
	decode.Field{Name: "size", Type: decode.Int()},
	decode.Field{Name: "deploy_id", Type: decode.Optional(decode.String())},
)

func getInt(o *decode.Object, name string) int {
	return int(decode.Get[int64](o, name))
}

func getIntPtr(o *decode.Object, name string) *int {
	return intPtr(decode.GetPtr[int64](o, name))
}
