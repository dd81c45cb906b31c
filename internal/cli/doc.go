// Package cli provides the interactive localauth command-line front end.
//
// On start the App restores the previous session (if any) and then runs a
// REPL over the auth service:
//
//	signup   create an account and log in
//	login    log in with email and password
//	logout   end the current session
//	whoami   show the logged-in user
//	stats    show operation counters for this process
//	help     list commands
//	exit     leave (also: quit)
//
// Service failures are shown with the fixed user-facing message for their
// error code; details go to the log.
package cli
