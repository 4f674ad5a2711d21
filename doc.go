/*
Package keyindex rebuilds a slot to key table from documents and their
binary sidecar index files.

A document such as "page.htm" is accompanied by a sidecar named after it
with the last extension character replaced by '#' ("page.ht#"). The
sidecar points into the document; each pointer names a slot of the table
and the position of the key that belongs there.

Data Structure Documentation

Sidecar

A sidecar is a plain sequence of fixed-size records. There is no header,
footer or record count; the number of records is implied by the file length.
A trailing partial record is ignored.

    Sidecar layout:
    +----------+----------+---------+----------+
    | record 1 | record 2 |   ...   | record n |
    +----------+----------+---------+----------+

    Record:
    +-------------------------+------------------------+
    | offset (2 bytes, LE u16) | value (2 bytes, LE u16) |
    +-------------------------+------------------------+

Document

A document is treated as raw bytes. Each record offset addresses a
64-byte field; the key is the text between the first and second '~'
within that field (or up to the end of the field if there is no
second '~').

    Field at offset:
    +--------------------+-----+-----------+-----+----------------+
    | prefix (any bytes) |  ~  |    key    |  ~  | remainder ...  |
    +--------------------+-----+-----------+-----+----------------+
    |<------------------------- 64 bytes ------------------------->|

Fields reaching past the end of the document are truncated. A field
without any '~' yields an empty key.

Table

The table holds MaxSlots entries, each pre-seeded with the placeholder
"x<slot>". A record with value v stores its key in slot v; later records
overwrite earlier ones. The table renders as a single '|'-joined line.
*/
package keyindex
