/*
Package catalog provides route reference-data loading and indexing.

Reference data lives in a directory of CSV files, one per route; the
filename without its extension is the route name. Each row carries
(station_id, station_order, station_name, segment) in traversal order,
with a header row that is skipped. Extra columns are tolerated.

The catalog is built once at start-up and is immutable afterwards, so
it is safe for unsynchronized concurrent reads.

Segment handling: a route is assumed to have at most two segments
(outbound and inbound display headers). The station at which the
segment label first changes becomes the cutoff station - the point
where the rendered digest switches to the second header. If the label
changes more than once, the cutoff id follows the newest changeover
while the segment list stays at two entries. That asymmetry mirrors
the upstream data contract and is pinned by tests; do not "fix" it
without a product decision.
*/
package catalog
