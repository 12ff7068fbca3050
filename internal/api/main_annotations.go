// @title           brainbox API
// @version         1.0
// @description     Self-hosted bookmarking service. Sign in to obtain a bearer token.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerToken
// @in              header
// @name            Authorization
// @description     The raw token returned by /signin, sent verbatim (no "Bearer" prefix).
package api
