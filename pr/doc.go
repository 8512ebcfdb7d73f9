// Package pr opens pull requests on GitHub and GitLab from generated
// titles and descriptions.
//
// A Provider is built from the repository's remote URL, so the same
// calling code works against either platform:
//
//	remoteURL, _ := gitCtx.GetRemoteURL("origin")
//	provider, err := pr.ProviderFromEnv(remoteURL)
//	if err != nil {
//	    return err
//	}
//	created, err := provider.CreatePR(ctx, pr.Options{
//	    Title: title,
//	    Body:  body,
//	    Head:  branch,
//	    Base:  "main",
//	})
//
// Tokens come from GITHUB_TOKEN or GITLAB_TOKEN, with GIT_TOKEN as a
// fallback for either platform.
package pr
