package http

// RequestIDHeader carries the request correlation identifier between the
// suite's services.
const RequestIDHeader = "X-Request-Id"
