/*
Package ofp4 implements openflow 1.3 action wire structures.

ofp4: ofp is short for openflow protocol, and 4 is "Protocol version 0x04".

ofp4 types are thin views over the wire bytes, useful for action encoding and
decoding.
*/
package ofp4
