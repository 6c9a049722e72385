// Package artifact assembles generated files. An Artifact is one named output
// unit (controller, model, repository, repository interface or service
// provider); Assemble layers an accumulated body into the artifact kind's
// outer shell template together with its namespace and name.
package artifact
