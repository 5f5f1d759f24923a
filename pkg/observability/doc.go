/*
Package observability turns session lifecycle hooks into logs and metrics.

Metrics live on a private Prometheus registry so several sessions (or tests)
never collide on the global default registry. The CLI dumps them in the text
exposition format; there is no HTTP endpoint.
*/
package observability
