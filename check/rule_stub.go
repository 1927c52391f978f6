// Copyright © 2025 The pyvet authors

package check

// RuleDocstringArgOrder reserves an identifier for a check that is not yet
// implemented. Registering it as a stub keeps the name from being reused
// while guaranteeing the checker never dispatches it.
//
// TODO(tjkuson): implement the signature/docstring comparison once the
// front end emits docstring argument lists.
var RuleDocstringArgOrder = &Rule{
	Name:   "docstring-arg-order",
	Doc:    "Check that documented argument order matches the function signature.\n\nNot yet implemented.",
	Status: StatusStub,
}
