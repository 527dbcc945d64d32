// Package cursor provides the anchor/head selection model.
//
// A Selection is a plain value. Operations that change text never adjust it
// implicitly; the editing context repositions it explicitly after each
// committed transaction.
package cursor
