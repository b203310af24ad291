// Package findoc implements the table and entity extraction engine of the
// findoc analyzer. Given the plain text of a financial document (portfolio
// statements, holdings reports, fund factsheets) it locates tabular regions,
// recognizes the securities and companies the document mentions, and
// optionally enriches them through external lookup services.
//
// The engine is deliberately rule based:
//   - Three independent detectors propose candidate tables from the raw text:
//     one driven by whitespace column alignment, one by drawn +-|= borders,
//     and one by a catalog of known financial section shapes.
//   - Candidates are deduplicated into a final table set.
//   - Entities are recognized from the holdings table when one exists, and
//     from identifier and company-name patterns in the free text.
//   - An optional language-model Recognizer and an optional lookup Searcher
//     refine the result; both degrade silently to the rule-based output.
//
// Extract never fails: malformed input is normalized, detection misses are
// tolerated, and collaborator failures fall back to the best partial result.
package findoc
