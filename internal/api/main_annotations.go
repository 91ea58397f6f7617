// @title           Xync API
// @version         1.0
// @description     Personal bookmarks, notes, tags, and categories. Authenticate with a bearer token from /auth/register or /auth/login.
// @BasePath        /api
// @securityDefinitions.apikey BearerToken
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and your token.
package api
