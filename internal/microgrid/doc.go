// Package microgrid provides the demo dynamical system used by the
// CLI: a renewable-energy installation with solar and wind generation,
// battery storage and a capped grid connection. It supplies the
// derivative function consumed by internal/integrators; the model
// itself knows nothing about the methods integrating it.
package microgrid
