// Package assessment models the screening forms rendered by the web service.
//
// It owns the heart field table, form value coercion, the request lifecycle
// shared by the structured and image forms, image upload selection and
// preview, and decoding of model server responses. Nothing here performs
// I/O; handlers drive the state and gateways perform the outbound calls.
package assessment
