// Package cli provides the interactive jobdesk command-line client.
//
// It wires configuration, local storage, the REST client, the session
// manager, the CV editors and the admin console into a REPL. On start the
// persisted session is restored; candidates then get their CV loaded and
// administrators work with the company list.
//
// Key features:
//   - Signup / Login / Admin login / Logout
//   - CV sections: contact, skills and summary drafts with explicit save
//   - AI summary suggestions with accept / reject
//   - Job recommendations and automated applications
//   - Company enrichment for administrators
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
