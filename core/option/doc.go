/*
Package option implements optional values.

Icon records carry values and comments which may be absent. An absent value
is different from an empty one: an icon without a codepoint for the selected
style is a record with value None, whereas an IcoMoon icon without tags
carries a present, but empty, comment.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package option
