// Package screens contains overlay flows rendered on top of the dashboard
// pages. Each type satisfies core.Screen.
package screens
