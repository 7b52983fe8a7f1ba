// Package install integrates SDK path resolution with config and pins
// loading. It provides the Context type that holds the resolved installation
// paths and loaded tool configuration, and turns them into resolver options.
package install
