// Package process integrates textops with hosts that run tools as local processes.
//
// Such hosts pass each tool argument as an environment variable named
// TRELLIS_ARG_<KEY> and take the process stdout as the result. Manifest and
// WriteManifest produce the tools file those hosts load.
package process
