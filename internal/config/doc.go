// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources fill fields the earlier ones left empty):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. The merged value is
// constructed once at process start, validated, and passed by injection into
// each component; nothing in this package is mutated after startup.
//
// The package also hosts the cookie-key provisioning policy
// ([ProvisionCookieKey]), a one-time startup gate that refuses to run a
// production deployment with a weak reauthentication-cookie signing key.
package config
