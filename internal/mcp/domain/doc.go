// Package domain defines the MCP tools and resources exposed by the
// Widmark MCP server: tool schemas, their input/output payloads, and the
// handlers that call the pharmacokinetic model in-process.
//
// Tool inputs and outputs are raw numerics in documented units (liters,
// fractions, kilograms, hours, mg/dL); the model itself works on
// unit-tagged quantities and the handlers convert at the boundary.
package domain
