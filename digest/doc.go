/*
Package digest renders per-route ETA summaries as markdown text.

A digest walks a route's station sequence in order, printing the
segment headers and one line per station with its current ETA list. Two
position markers are inferred along the way:

  - a bus icon inline before a station name when its smallest ETA is 0
    and the previous data-bearing station's was not: the vehicle is at
    that station right now. Requiring the previous value to be non-zero
    keeps a run of adjacent "0 minutes" stops from all being marked -
    only the first of such a run can realistically hold the vehicle.
  - a bus icon on its own line before a station when the smallest ETA
    decreased from the previous data-bearing station without passing
    through zero: the vehicle is between the two stations.

The heuristic is a one-element memory (the previous non-skipped
smallest ETA) threaded through a single left-to-right pass. Stations
with no data render a no-data marker and do not update that memory.
Each Render call is independent; nothing persists between calls.
*/
package digest
