// Package lib provide small helpers that are not tied to any particular
// tree algorithm. Package shall not depend on anything other than the
// standard library.
package lib
