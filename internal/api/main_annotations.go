// @title           bookmarkd API
// @version         1.0
// @description     Bookmark and tag management service. Authenticate with an API token or an OIDC bearer token.
// @BasePath        /api
// @securityDefinitions.apikey BearerToken
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and your API token. Example: "Bearer bm_xxx"
package api
