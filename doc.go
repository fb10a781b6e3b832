// Package routeecompass is a labeled shortest-path search and GPS
// map-matching engine over a static road network.
//
// A Search Instance (package query) bundles a read-only network.Graph with
// a state.StateModel, a cost.CostModel, a label.Model, and optional
// access.Model constraints. search.RunVertex and search.RunEdge drive an
// A* search over that instance, building a label-keyed search.Tree with
// safe Pareto dominance pruning (package search). mapmatching.MatchTrace
// aligns a GPS trace against the same network via the Longest Common
// Subsequence Similarity algorithm. scheduler.Run load-balances many
// independent queries across a bounded worker pool.
//
// Subpackages:
//
//	network/     Graph, VertexId, EdgeId, EdgeListId, vertex coordinates, edge linestrings
//	state/       StateVariable, StateModel, StateVector
//	cost/        Cost, TraversalCost, CostModel
//	label/       Label variants, Model, dominance comparison
//	traversal/   TraversalModel interface + distance/speed/time/combined default models
//	access/      AccessModel, ConstraintModel: turn restrictions, road class, vehicle restriction
//	search/      SearchTree, pruning, Frontier, A* driver (vertex- and edge-oriented)
//	mapmatching/ MapMatchingTrace, PointMatch, TrajectorySegment, LCSS pipeline
//	scheduler/   weight-balanced batch scheduler over a worker pool
//	query/       Search Instance assembly, JSON model-builder registry, summary ops, output formats
//	internal/geo haversine distance, nearest-point-on-linestring, GeoJSON/WKT emission
//
// This module has no top-level API of its own; import the subpackage your
// use case needs.
package routeecompass
